package cancel_session

// CancelSessionRequest HTTP request model
type CancelSessionRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}
