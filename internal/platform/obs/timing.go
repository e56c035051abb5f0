// Package obs holds the request-scoped timing helper shared by the provider
// adapters. A planned trip fans out into many upstream calls (routing,
// places, tolls, price lookups); timing each one under the request id is how
// a slow plan gets attributed to the provider responsible.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey is populated by the API middleware; adapters only read it.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration of one provider call. Op names follow
// "provider.Operation", e.g. "ors.GetRoute" or "places.FindLodging".
//
//	defer obs.Time(ctx, "ors.GetRoute")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
