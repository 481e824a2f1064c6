package consts

const (
	WinningScore     = 500
	StartingHandSize = 7
	DeckSize         = 108

	// MaxPenalties disqualifies a participant once reached within a round.
	MaxPenalties = 3

	MinPlayers   = 2
	MaxPlayers   = 10
	DefaultSeats = 4

	IllegalPlayPenalty       = 1
	MissedDeclarationPenalty = 2
	BluffPenalty             = 4
	FailedChallengePenalty   = 6

	MaxPromptAttempts = 3

	DefaultDetectionProbability = 1.0
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist             = NewErr(1, true, "Exist. ")
	ErrorsInputInvalid      = NewErr(1, false, "Input invalid. ")
	ErrorsRetriesExhausted  = NewErr(1, false, "Too many invalid inputs. ")
	ErrorsPlayersInvalid    = NewErr(1, true, "Game players invalid. ")
	ErrorsDifficultyInvalid = NewErr(1, true, "Difficulty invalid. ")
	ErrorsVariantInvalid    = NewErr(1, true, "Game variant invalid. ")
	ErrorsProbabilityRange  = NewErr(1, true, "Detection probability must be between 0 and 1. ")

	Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
)
