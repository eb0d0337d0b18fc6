package service

import (
	"testing"

	"debate_arena/internal/apperrors"
	"debate_arena/internal/models"
)

func TestInviteFlow(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice")
	bob := env.addUser("bob")

	invite, err := env.friendSvc.SendInvite(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("SendInvite: %v", err)
	}
	if invite.Status != models.InviteStatusPending {
		t.Fatalf("expected pending invite, got %s", invite.Status)
	}

	// 邀請出現在雙方的待處理列表
	received, err := env.friendSvc.GetReceivedInvites(bob.ID)
	if err != nil {
		t.Fatalf("GetReceivedInvites: %v", err)
	}
	if len(received) != 1 || received[0].ID != invite.ID {
		t.Fatalf("expected bob to have one received invite, got %+v", received)
	}
	sent, err := env.friendSvc.GetSentInvites(alice.ID)
	if err != nil {
		t.Fatalf("GetSentInvites: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("expected alice to have one sent invite, got %+v", sent)
	}

	// 只有收件人可以接受
	_, err = env.friendSvc.AcceptInvite(alice.ID, invite.ID)
	if err == nil || !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden for sender accept, got %v", err)
	}

	if _, err := env.friendSvc.AcceptInvite(bob.ID, invite.ID); err != nil {
		t.Fatalf("AcceptInvite: %v", err)
	}

	// 接受之後雙方互為好友
	for _, pair := range [][2]uint{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		friends, err := env.friendSvc.GetFriends(pair[0])
		if err != nil {
			t.Fatalf("GetFriends(%d): %v", pair[0], err)
		}
		if len(friends) != 1 || friends[0].Friend.ID != pair[1] {
			t.Fatalf("expected %d to be friend of %d, got %+v", pair[1], pair[0], friends)
		}
	}

	// 已處理的邀請不能再接受
	_, err = env.friendSvc.AcceptInvite(bob.ID, invite.ID)
	if err == nil || err.Error() != "Invite is not pending" {
		t.Fatalf("expected not pending, got %v", err)
	}
}

func TestSendInviteValidation(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice")
	bob := env.addUser("bob")

	// 不能邀請自己
	if _, err := env.friendSvc.SendInvite(alice.ID, alice.ID); err == nil {
		t.Fatalf("expected self-invite rejection")
	}

	// 收件人必須存在
	_, err := env.friendSvc.SendInvite(alice.ID, 999)
	if err == nil || !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// 已有待處理邀請時不能重發（反方向也一樣）
	if _, err := env.friendSvc.SendInvite(alice.ID, bob.ID); err != nil {
		t.Fatalf("SendInvite: %v", err)
	}
	if _, err := env.friendSvc.SendInvite(alice.ID, bob.ID); err == nil {
		t.Fatalf("expected duplicate invite rejection")
	}
	if _, err := env.friendSvc.SendInvite(bob.ID, alice.ID); err == nil {
		t.Fatalf("expected reverse duplicate invite rejection")
	}
}

func TestRejectInvite(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice")
	bob := env.addUser("bob")

	invite, err := env.friendSvc.SendInvite(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("SendInvite: %v", err)
	}

	if _, err := env.friendSvc.RejectInvite(bob.ID, invite.ID); err != nil {
		t.Fatalf("RejectInvite: %v", err)
	}

	friends, err := env.friendSvc.GetFriends(alice.ID)
	if err != nil {
		t.Fatalf("GetFriends: %v", err)
	}
	if len(friends) != 0 {
		t.Fatalf("expected no friends after reject, got %+v", friends)
	}

	// 拒絕之後可以再邀請一次
	if _, err := env.friendSvc.SendInvite(alice.ID, bob.ID); err != nil {
		t.Fatalf("SendInvite after reject: %v", err)
	}
}

func TestAlreadyFriends(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice")
	bob := env.addUser("bob")
	env.befriend(alice.ID, bob.ID)

	_, err := env.friendSvc.SendInvite(alice.ID, bob.ID)
	if err == nil || err.Error() != "Users are already friends" {
		t.Fatalf("expected already friends, got %v", err)
	}
}

func TestDeleteFriend(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice")
	bob := env.addUser("bob")
	env.befriend(alice.ID, bob.ID)

	// 被邀請的一方也可以刪除好友
	if err := env.friendSvc.DeleteFriend(bob.ID, alice.ID); err != nil {
		t.Fatalf("DeleteFriend: %v", err)
	}

	friends, err := env.friendSvc.GetFriends(alice.ID)
	if err != nil {
		t.Fatalf("GetFriends: %v", err)
	}
	if len(friends) != 0 {
		t.Fatalf("expected no friends after delete, got %+v", friends)
	}

	if err := env.friendSvc.DeleteFriend(bob.ID, alice.ID); err == nil {
		t.Fatalf("expected delete of missing friendship to fail")
	}
}

func TestGetInviteAccessControl(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice")
	bob := env.addUser("bob")
	carol := env.addUser("carol")

	invite, err := env.friendSvc.SendInvite(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("SendInvite: %v", err)
	}

	for _, userID := range []uint{alice.ID, bob.ID} {
		if _, err := env.friendSvc.GetInvite(userID, invite.ID); err != nil {
			t.Fatalf("GetInvite(%d): %v", userID, err)
		}
	}

	_, err = env.friendSvc.GetInvite(carol.ID, invite.ID)
	if err == nil || !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden for third party, got %v", err)
	}
}
