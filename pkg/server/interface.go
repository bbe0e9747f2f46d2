/*
Package server implements msgpack IPC for wordglob lookups.

Clients write msgpack-encoded requests to the process's stdin and read
msgpack-encoded responses from stdout, one value per message with no extra framing.
Requests are handled synchronously in arrival order.

# IPC

Right after start the server announces itself:

	{"status": "ready", "words": 558}

A lookup request carries the pattern and optional blacklist and yellow letters:

	{"id": "req_001", "p": "h?llo", "b": "a", "y": ""}

The response holds all matches, those without repeated letters, those with
repeated letters, the match count and the time taken in microseconds:

	{"id": "req_001", "a": ["hello"], "n": [], "r": ["hello"], "c": 1, "t": 12}

A request that cannot be decoded gets an error message and ends the session:

	{"id": "", "e": "invalid request", "c": 400}

Logs go to stderr, so stdout only ever carries msgpack values.
*/
package server

// QueryRequest is a single lookup request
type QueryRequest struct {
	ID        string `msgpack:"id"`
	Pattern   string `msgpack:"p"`
	Blacklist string `msgpack:"b,omitempty"`
	Yellow    string `msgpack:"y,omitempty"`
}

// QueryResponse holds the three word groups for one request
type QueryResponse struct {
	ID         string   `msgpack:"id"`
	All        []string `msgpack:"a"`
	NoRepeat   []string `msgpack:"n"`
	WithRepeat []string `msgpack:"r"`
	Count      int      `msgpack:"c"`
	TimeTaken  int64    `msgpack:"t"`
}

// StatusMessage is sent once when the server is ready
type StatusMessage struct {
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words,omitempty"`
}

// QueryError holds basic error information for failed requests
type QueryError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
