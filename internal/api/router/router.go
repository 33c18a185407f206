package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aletbay/summit-concierge/internal/api/handlers/message"
	"github.com/aletbay/summit-concierge/internal/api/handlers/reminder"
)

func New(messageHandler *message.Handler, reminderHandler *reminder.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	api.POST("/messages", messageHandler.Handle)

	api.POST("/reminders", reminderHandler.Create)
	api.GET("/reminders/:inbox_id", reminderHandler.List)
	api.DELETE("/reminders/:id", reminderHandler.Cancel)
	api.DELETE("/reminders", reminderHandler.CancelAll)

	return e
}
