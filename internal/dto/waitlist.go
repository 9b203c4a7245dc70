package dto

// WaitlistJoinRequest 加入候补名单请求
type WaitlistJoinRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
}

// WaitlistCountResponse 候补名单人数响应
type WaitlistCountResponse struct {
	Count int64 `json:"count"`
}
