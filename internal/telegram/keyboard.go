package telegram

// InlineKeyboardMarkup represents an inline keyboard attached to a message
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// InlineKeyboardButton represents one button of an inline keyboard. Exactly
// one of URL, CallbackData or WebApp should be set.
type InlineKeyboardButton struct {
	Text         string      `json:"text"`
	URL          string      `json:"url,omitempty"`
	CallbackData string      `json:"callback_data,omitempty"`
	WebApp       *WebAppInfo `json:"web_app,omitempty"`
}

// WebAppInfo points a button at a Telegram Mini App page
type WebAppInfo struct {
	URL string `json:"url"`
}

// WebAppKeyboard builds a one-button keyboard that opens the mini-app
func WebAppKeyboard(buttonText, webAppURL string) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{
				{Text: buttonText, WebApp: &WebAppInfo{URL: webAppURL}},
			},
		},
	}
}
