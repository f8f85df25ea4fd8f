package health

const (
	dbConnected = "connected"
	dbError     = "error"
)

// HealthResponse HTTP response model. DB заполняется только при ?db=1
type HealthResponse struct {
	OK bool   `json:"ok"`
	DB string `json:"db,omitempty"`
}
