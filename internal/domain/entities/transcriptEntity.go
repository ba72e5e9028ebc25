package entities

// Role identifies who authored a Turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is a single immutable message in a user's transcript.
type Turn struct {
	Role    Role   `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// Transcript is the append-only list of turns stored for one user.
//
// Version is zero for a transcript that has never been saved and grows by one
// on every successful save. Stores reject a save whose Version does not match
// the stored one.
type Transcript struct {
	UserID  string `json:"userId"`
	Turns   []Turn `json:"messages"`
	Version int64  `json:"version"`
}

// NewTranscript returns an empty, never-saved transcript for userID.
func NewTranscript(userID string) Transcript {
	return Transcript{UserID: userID, Turns: []Turn{}}
}

// Append returns a copy of t with turns added at the end. The receiver's
// backing array is never shared with the result.
func (t Transcript) Append(turns ...Turn) Transcript {
	merged := make([]Turn, 0, len(t.Turns)+len(turns))
	merged = append(merged, t.Turns...)
	merged = append(merged, turns...)
	t.Turns = merged
	return t
}

// Messages returns the turns, never nil, so JSON encodes an empty list as [].
func (t Transcript) Messages() []Turn {
	if t.Turns == nil {
		return []Turn{}
	}
	return t.Turns
}
