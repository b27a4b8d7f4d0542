package handler

import "github.com/go-telegram/bot"

// Callback payloads carry a discriminated action tag and one argument,
// separated by a colon. Tags are never prefixes of each other.
const (
	cbNext    = "next:"
	cbUpload  = "upload:"
	cbLang    = "lang:"
	cbApprove = "approve:"
	cbReject  = "reject:"
)

// Register registers all command, callback and catch-all handlers on
// the bot instance. Dispatch picks the first registered handler that
// matches, so the catch-all goes last: commands keep their own handlers
// and every other message lands in handleMessage.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypePrefix, h.handleAdmin)

	// Task browsing
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbNext, bot.MatchTypePrefix, h.handleNext)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbUpload, bot.MatchTypePrefix, h.handleUpload)

	// Language selection
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbLang, bot.MatchTypePrefix, h.handleLangSelect)

	// Review decisions
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbApprove, bot.MatchTypePrefix, h.handleApprove)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbReject, bot.MatchTypePrefix, h.handleReject)

	// Catch-all: menu labels, conversational input, photos. An empty
	// prefix matches any message, photos included.
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, h.handleMessage)
}
