package swing

const (
	introCommentary = "Tap to hook the ceiling!"
	startCommentary = "Swing through the neon void!"
)

var gameOverCommentary = [...]string{
	"Gravity remains undefeated!",
	"That was... not optimal.",
	"The void claims another!",
	"Swing and a miss!",
	"Better luck next orbit!",
	"The neon lights fade...",
	"Physics: 1, You: 0",
	"Back to the drawing board!",
	"The rope wasn't feeling it.",
	"Try, try again!",
}

// GameOverLines returns the pool game-over commentary is drawn from.
func GameOverLines() []string {
	return append([]string(nil), gameOverCommentary[:]...)
}
