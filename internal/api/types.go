package api

// DTOs mirror the service contracts.

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type Profile struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	PictureBase64      string `json:"pictureBase64,omitempty"`
	Bio                string `json:"bio,omitempty"`
	BirthDate          string `json:"birthDate,omitempty"`
	SSCResult          string `json:"sscResult,omitempty"`
	HSCResult          string `json:"hscResult,omitempty"`
	UniversityResult   string `json:"universityResult,omitempty"`
	PositionOrInstitue string `json:"positionOrInstitue,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	Address            string `json:"address,omitempty"`
}

type Connection struct {
	ID             int64  `json:"id"`
	RequesterID    int64  `json:"requesterId"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	ReceiverID     int64  `json:"receiverId"`
	ReceiverName   string `json:"receiverName"`
	ReceiverEmail  string `json:"receiverEmail"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type Post struct {
	ID        int64    `json:"id"`
	ProfileID int64    `json:"profileId"`
	Content   string   `json:"content"`
	Type      string   `json:"type,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

type CreatePost struct {
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	PostedAt    string `json:"postedAt,omitempty"`
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
