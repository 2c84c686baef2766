// Package video turns a still image into a short video through the
// Stability image-to-video API.
//
// The flow is asynchronous on the service side: starting a generation
// returns an ID, and the result endpoint answers 202 until the video is
// ready. Await wraps the polling loop; ErrInProgress is the in-between
// state, not a failure.
package video

import (
	"errors"
	"math/rand/v2"
)

// ErrInProgress is returned by Result while the generation is still
// running. Await treats it as a signal to keep polling.
var ErrInProgress = errors.New("video: generation in progress")

// maxSeed is the largest seed the API accepts.
const maxSeed = 4294967294

// RandomSeed returns a seed in [1, 4294967294].
func RandomSeed() int64 {
	return rand.Int64N(maxSeed) + 1
}
