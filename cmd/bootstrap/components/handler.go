package components

import (
	"meetslot/internal/handler"
	"meetslot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewMeetingHandler,
		api.NewBookingHandler,
		func(u *api.UserHandler, m *api.MeetingHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{User: u, Meeting: m, Booking: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
