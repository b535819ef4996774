package model

// ResponseTypeInChannel делает ответ видимым всем участникам канала, а не только автору команды.
const ResponseTypeInChannel = "in_channel"

// Reply представляет ответ на слэш-команду.
type Reply struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// NewReply оборачивает текст в ответ для канала.
func NewReply(text string) Reply {
	return Reply{ResponseType: ResponseTypeInChannel, Text: text}
}
