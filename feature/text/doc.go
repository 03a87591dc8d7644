// Package text implements the shared text buffer.
//
// A single Store holds CurrentText. Each submission overwrites it wholesale
// and each retrieval returns it verbatim; there is no history, validation or
// persistence, and the value resets to "" when the process restarts.
//
// # Concurrency
//
// Fiber serves requests on many goroutines. The Store guards the value with a
// sync.RWMutex, which makes last-write-wins the explicit policy: the write that
// takes the lock last is what every later read returns.
//
// # Components
//
//   - Store: the mutex-guarded string.
//   - Service: Submit/Retrieve over the store.
//   - Handler: the JSON endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /submit-text : Store {"text": "..."} (JSON or form); replies {"success": true}.
//   - GET /get-text : Reply {"text": "..."}.
package text
