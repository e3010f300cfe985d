package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameThirteen is the authoritative match handler name registered with Nakama.
	MatchNameThirteen = "thirteen_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlayCards int64 = 2
	OpPassTurn  int64 = 3

	// Server -> Client events
	OpMatchSnapshot int64 = 101
	OpGameStarted   int64 = 102
	OpHandDealt     int64 = 103 // sent privately
	OpPlayAccepted  int64 = 104
	OpTurnPassed    int64 = 105
	OpRoundReset    int64 = 106
	OpTurnChanged   int64 = 107
	OpGameEnded     int64 = 108
	OpGameError     int64 = 109
)
