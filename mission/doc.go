// Package mission connects a planned coverage route to the flight-control
// collaborator that flies it.
//
// What:
//
//   - Tracker maps the runner's reported waypoint index onto a cell of the last
//     planned route and signals when a mission has just finished.
//   - AnnotationCache is a read-through cache of per-cell labels (QR payloads)
//     with explicit Refresh and Invalidate.
//   - Poller polls runner status on a fixed interval, feeds the Tracker and
//     publishes the latest position; newer polls always win.
//   - Playback replays a route locally, one waypoint per tick, and can be
//     stopped at any time.
//   - NewRequest builds the mission payload (waypoints, meta, clamped height,
//     axis hint, closing index) and LocalPoints converts cells to metres.
//   - HTTPRunner talks to the runner's HTTP endpoints.
//
// Concurrency:
//
//   - Tracker, AnnotationCache, Poller and Playback are safe for concurrent use.
//   - Poller.Run and Playback goroutines stop when their context is cancelled.
//
// Errors:
//
//   - ErrEmptyRoute, ErrBadAxis, ErrBadReturnStart wrap core.ErrInvalidArgument.
//   - ErrPlaybackActive: a playback is already running.
//   - ErrRunner: the runner answered with a non-2xx status.
package mission
