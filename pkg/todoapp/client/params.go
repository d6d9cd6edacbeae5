package client

type CallOption func(*callSettings)

type callSettings struct {
	server  string
	headers map[string][]string
}

func newCallSettings(options ...CallOption) callSettings {
	s := callSettings{}
	for _, option := range options {
		option(&s)
	}
	return s
}

// Server overrides the deployment's default base URL for a single call.
func Server(server string) CallOption {
	return func(s *callSettings) {
		s.server = server
	}
}

// Headers adds extra request headers to a single call.
func Headers(headers map[string][]string) CallOption {
	return func(s *callSettings) {
		if s.headers == nil {
			s.headers = make(map[string][]string, len(headers))
		}

		for header, values := range headers {
			s.headers[header] = append(s.headers[header], values...)
		}
	}
}
