package models

// Admin is the single back-office account. The password field holds a
// bcrypt hash, never plaintext.
type Admin struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"-"`
}

// AdminLoginInput is the payload for POST /api/auth/login.
type AdminLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
