package actions

import (
	"time"

	"devconnect/client/store"

	"github.com/google/uuid"
)

// SetAlert raises one transient alert and schedules its removal after
// the alert timeout. The removal is a deferred dispatch, never a
// blocking wait.
func (c *Client) SetAlert(message, kind string) {
	id := uuid.New().String()
	c.store.Dispatch(store.SetAlertEvent{ID: id, Message: message, Kind: kind})

	time.AfterFunc(c.alertTimeout, func() {
		c.store.Dispatch(store.RemoveAlertEvent{ID: id})
	})
}
