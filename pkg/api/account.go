package api

// TokenResponse ответ с токеном сессии (checkcode, reset)
type TokenResponse struct {
	Token   string `json:"token"`
	Action  string `json:"action"` // SAVE_TOKEN
	Success bool   `json:"success"`
}

// ActionResponse ответ без данных, только действие для клиента
type ActionResponse struct {
	Action  string `json:"action"`
	Success bool   `json:"success"`
}
