package utils

import "github.com/google/uuid"

// SessionID tags every spawned tool's log output so overlapping runs
// can be told apart in a shared terminal.
var SessionID = uuid.NewString()[:8]
