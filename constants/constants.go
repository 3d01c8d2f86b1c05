package constants

const (
	AppTitle   = "dailyDo Todo App"
	AppVersion = "1.0.0"
)

// レスポンスメッセージ
const (
	MsgWelcome          = "Welcome to dailyDo todo app"
	MsgLoginSuccessful  = "Login successful"
	MsgSignupSuccessful = "Signup successful"
	MsgTaskDeleted      = "Task successfully deleted"
)

// エラーメッセージ
const (
	ErrMissingCredentials = "Missing email or password"
	ErrUserNotFound       = "User not found"
	ErrIncorrectPassword  = "Incorrect password"
	ErrEmailRegistered    = "Email already registered"
	ErrTaskNotFound       = "No task found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
)

// gin.Context keys
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)
