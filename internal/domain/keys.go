package domain

type CtxKey string

// Keys set on the gin context by the auth middleware.
const (
	KeyUserID        CtxKey = "UserID"
	KeyUserEmail     CtxKey = "Email"
	KeyUserRole      CtxKey = "Role"
	KeyAccountStatus CtxKey = "AccountStatus"
)
