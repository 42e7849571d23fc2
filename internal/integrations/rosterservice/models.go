package rosterservice

// Coach модель тренера из RosterService
// Неактивные тренеры исключаются из подбора и расчёта слотов
type Coach struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Specialty   string `json:"specialty"`
	Active      bool   `json:"active"`
}

// ClientAccount модель клиента из RosterService
type ClientAccount struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// ErrorResponse модель ошибки от RosterService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
