package domain

import "encoding/json"

// Envelope - конверт ответа внешнего REST бэкенда.
// Форма задана бэкендом, а не этим приложением: каждый ответ
// приходит как {ok, msg, data, errores?}.
type Envelope struct {
	Ok      bool            `json:"ok"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
	Errores []string        `json:"errores,omitempty"`
}

// Decode распаковывает поле data конверта в указанное значение.
// Пустое или null data оставляет значение нетронутым.
func (e *Envelope) Decode(v interface{}) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}
