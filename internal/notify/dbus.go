//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	appName = "prodify"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New creates a Notifier that sends desktop notifications over the session bus.
// Without a session bus it returns a no-op notifier.
func New(logger *zap.Logger) Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Debug("desktop notifications disabled", zap.Error(err))
		return stubNotifier{}
	}
	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
		"category":      dbus.MakeVariant("x-prodify.preview"),
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify", 0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}
