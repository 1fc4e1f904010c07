package moverecord

// Store groups the record models of one database.
type Store struct {
	GameStart GameStartRecodeModel
	Move      MoveRecodeModel
	GameEnd   GameEndRecodeModel
}

func NewStore(url, db string) Store {
	return Store{
		GameStart: NewGameStartRecodeModel(url, db),
		Move:      NewMoveRecodeModel(url, db),
		GameEnd:   NewGameEndRecodeModel(url, db),
	}
}
