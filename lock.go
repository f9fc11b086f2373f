package fftcache

import "sync"

// None of the engine's planning calls (plan construction, plan
// destruction, scratch allocation and free, global cleanup) are safe to
// run concurrently, so we serialize them with this mutex. Execution
// paths never take it.
//
// The lock is not re-entrant. Any code path that needs to call a
// lock-acquiring routine, such as (*Handle).Destroy, while holding the
// lock must release it first and re-acquire it afterwards.
var plannerMu sync.Mutex
