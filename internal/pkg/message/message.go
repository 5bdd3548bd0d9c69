package message

const (
	InvalidInput   = "Invalid input."
	InvalidTicket  = "Invalid or missing ticket."
	RoomFull       = "Room is full."
	RoomNotFound   = "Room not found."
	WrongPasscode  = "Wrong passcode."
	AlreadyMoved   = "You already moved this round."
	NotPlaying     = "The round is not accepting moves."
	NotResolved    = "The round is not finished yet."
	SomethingWrong = "Something went wrong."
	EnvErrFmt      = "environment variable is not set: %s"
)
