package location

// Publisher receives the location token after every accepted navigation.
type Publisher interface {
	Publish(token string)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(token string)

// Publish calls f(token).
func (f PublisherFunc) Publish(token string) {
	f(token)
}

// Multi fans a token out to several publishers in order. Nil entries are skipped.
func Multi(publishers ...Publisher) Publisher {
	return PublisherFunc(func(token string) {
		for _, p := range publishers {
			if p != nil {
				p.Publish(token)
			}
		}
	})
}

// Recorder keeps every published token. Useful as a test double and for
// tracking the last published location.
type Recorder struct {
	Tokens []string
}

// Publish appends token.
func (r *Recorder) Publish(token string) {
	r.Tokens = append(r.Tokens, token)
}

// Last returns the most recently published token, or "".
func (r *Recorder) Last() string {
	if len(r.Tokens) == 0 {
		return ""
	}
	return r.Tokens[len(r.Tokens)-1]
}
