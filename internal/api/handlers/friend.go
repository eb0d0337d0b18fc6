package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/middleware"
	"debate_arena/internal/service"
)

// FriendHandler 處理好友和好友邀請相關的請求
type FriendHandler struct {
	friendService *service.FriendService
}

// NewFriendHandler 創建一個新的 FriendHandler 實例
func NewFriendHandler(friendService *service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// GetFriends 列出目前用戶的好友
func (h *FriendHandler) GetFriends(c *gin.Context) {
	friends, err := h.friendService.GetFriends(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, friends)
}

// GetFriend 查詢單一好友
func (h *FriendHandler) GetFriend(c *gin.Context) {
	friend, err := h.friendService.GetFriend(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, friend)
}

// DeleteFriend 移除好友
func (h *FriendHandler) DeleteFriend(c *gin.Context) {
	if err := h.friendService.DeleteFriend(middleware.CurrentUserID(c), parseIDParam(c, "id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// SendInvite 向另一個用戶發送好友邀請
func (h *FriendHandler) SendInvite(c *gin.Context) {
	invite, err := h.friendService.SendInvite(middleware.CurrentUserID(c), parseIDParam(c, "userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// GetInvite 查詢單一邀請
func (h *FriendHandler) GetInvite(c *gin.Context) {
	invite, err := h.friendService.GetInvite(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

// AcceptInvite 接受好友邀請
func (h *FriendHandler) AcceptInvite(c *gin.Context) {
	invite, err := h.friendService.AcceptInvite(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

// RejectInvite 拒絕好友邀請
func (h *FriendHandler) RejectInvite(c *gin.Context) {
	invite, err := h.friendService.RejectInvite(middleware.CurrentUserID(c), parseIDParam(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

// GetReceivedInvites 列出收到的待處理邀請
func (h *FriendHandler) GetReceivedInvites(c *gin.Context) {
	invites, err := h.friendService.GetReceivedInvites(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invites)
}

// GetSentInvites 列出發出的待處理邀請
func (h *FriendHandler) GetSentInvites(c *gin.Context) {
	invites, err := h.friendService.GetSentInvites(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invites)
}
