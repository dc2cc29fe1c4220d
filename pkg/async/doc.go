// Package async provides lightweight futures for running side effects in
// the background.
//
// Its main consumer is the session manager, which submits "new device"
// notifications during sign-in: the notification must not add latency to,
// and must never fail, the sign-in itself. The returned Future lets tests
// (and shutdown paths) wait for completion and observe the error.
//
//	future := async.Exec(ctx, userID, notifier.NotifyNewDevice)
//	// ... respond to the client immediately ...
//	if err := future.AwaitWithTimeout(time.Second); err != nil {
//		log.Warn("notification failed", "error", err)
//	}
package async
