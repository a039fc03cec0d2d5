package identity

const DefaultSignInMessage = "Sign in to access this page"

type Render int

const (
	RenderLoading Render = iota
	RenderSignIn
	RenderContent
)

type Decision struct {
	Render  Render
	Message string
	Member  *Member
}

// Decide maps the current identity state to what a protected page renders.
// Loading wins over everything else; the gate never changes the state itself.
func Decide(state State, message string) Decision {
	switch {
	case state.IsLoading():
		return Decision{Render: RenderLoading}
	case state.IsAuthenticated() && state.Member() != nil:
		return Decision{Render: RenderContent, Member: state.Member()}
	default:
		if message == "" {
			message = DefaultSignInMessage
		}
		return Decision{Render: RenderSignIn, Message: message}
	}
}
