// file: model/session.go

package model

// Session is the identity of the caller, taken from a verified access token.
// Handlers receive it through the request context instead of looking it up
// from ambient state.
type Session struct {
	UserID int  `json:"userId"`
	Role   Role `json:"role"`
}

func (s Session) IsOwner() bool {
	return s.Role == RoleRestaurantOwner
}
