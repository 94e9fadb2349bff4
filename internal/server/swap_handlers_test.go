package server

import (
	"fmt"
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSwapRequestFlow(t *testing.T) {
	s, db := setupHandlerTestServer(t)

	alice, aliceSkill := seedMember(t, db, "swap_alice", "Guitar")
	bob, bobSkill := seedMember(t, db, "swap_bob", "Spanish")

	app := newAuthedApp(alice.ID)
	app.Post("/swap-requests/send/:skillId", s.SendSwapRequest)
	app.Get("/swap-requests/outgoing", s.GetOutgoingSwapRequests)

	t.Run("First Send Creates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/swap-requests/send/%d", bobSkill.ID), nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Swap request sent", body["message"])
		swap, ok := body["swap_request"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(bob.ID), swap["to_user_id"])
		assert.Equal(t, string(models.SwapStatusPending), swap["status"])
	})

	t.Run("Repeat Send Is Idempotent", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/swap-requests/send/%d", bobSkill.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Swap already requested", body["message"])

		var count int64
		db.Model(&models.SwapRequest{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Own Skill Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/swap-requests/send/%d", aliceSkill.ID), nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing Skill Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/swap-requests/send/99999", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Invalid Skill ID Rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/swap-requests/send/abc", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Outgoing Lists The Request", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/swap-requests/outgoing", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		swaps, ok := body["swap_requests"].([]any)
		require.True(t, ok)
		assert.Len(t, swaps, 1)
	})
}

func TestSwapRequestTransitions(t *testing.T) {
	s, db := setupHandlerTestServer(t)

	alice, aliceSkill := seedMember(t, db, "tr_alice", "Guitar")
	bob, bobSkill := seedMember(t, db, "tr_bob", "Spanish")

	swap := &models.SwapRequest{
		FromUserID:       bob.ID,
		ToUserID:         alice.ID,
		OfferedSkillID:   bobSkill.ID,
		RequestedSkillID: aliceSkill.ID,
		Status:           models.SwapStatusPending,
	}
	require.NoError(t, db.Create(swap).Error)

	aliceApp := newAuthedApp(alice.ID)
	aliceApp.Post("/swap-requests/:id/accept", s.AcceptSwapRequest)
	aliceApp.Post("/swap-requests/:id/decline", s.DeclineSwapRequest)
	aliceApp.Get("/swap-requests/incoming", s.GetIncomingSwapRequests)

	bobApp := newAuthedApp(bob.ID)
	bobApp.Post("/swap-requests/:id/accept", s.AcceptSwapRequest)
	bobApp.Delete("/swap-requests/:id", s.DeleteSwapRequest)

	t.Run("Incoming Lists The Request", func(t *testing.T) {
		resp := doJSON(t, aliceApp, http.MethodGet, "/swap-requests/incoming", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		swaps, ok := body["swap_requests"].([]any)
		require.True(t, ok)
		assert.Len(t, swaps, 1)
	})

	t.Run("Sender Cannot Accept", func(t *testing.T) {
		resp := doJSON(t, bobApp, http.MethodPost,
			fmt.Sprintf("/swap-requests/%d/accept", swap.ID), nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Recipient Accepts", func(t *testing.T) {
		resp := doJSON(t, aliceApp, http.MethodPost,
			fmt.Sprintf("/swap-requests/%d/accept", swap.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		updated, ok := body["swap_request"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(models.SwapStatusAccepted), updated["status"])
	})

	t.Run("Decline After Accept Wins", func(t *testing.T) {
		resp := doJSON(t, aliceApp, http.MethodPost,
			fmt.Sprintf("/swap-requests/%d/decline", swap.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reloaded models.SwapRequest
		require.NoError(t, db.First(&reloaded, swap.ID).Error)
		assert.Equal(t, models.SwapStatusDeclined, reloaded.Status)
		_ = resp.Body.Close()
	})

	t.Run("Unknown Request Not Found", func(t *testing.T) {
		resp := doJSON(t, aliceApp, http.MethodPost, "/swap-requests/99999/accept", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Sender Deletes Own Request", func(t *testing.T) {
		resp := doJSON(t, bobApp, http.MethodDelete,
			fmt.Sprintf("/swap-requests/%d", swap.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var count int64
		db.Model(&models.SwapRequest{}).Where("id = ?", swap.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestDeleteSwapRequestForbiddenForStranger(t *testing.T) {
	s, db := setupHandlerTestServer(t)

	alice, aliceSkill := seedMember(t, db, "del_alice", "Guitar")
	bob, bobSkill := seedMember(t, db, "del_bob", "Spanish")
	mallory, _ := seedMember(t, db, "del_mallory", "Chess")

	swap := &models.SwapRequest{
		FromUserID:       alice.ID,
		ToUserID:         bob.ID,
		OfferedSkillID:   aliceSkill.ID,
		RequestedSkillID: bobSkill.ID,
		Status:           models.SwapStatusPending,
	}
	require.NoError(t, db.Create(swap).Error)

	app := newAuthedApp(mallory.ID)
	app.Delete("/swap-requests/:id", s.DeleteSwapRequest)

	resp := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/swap-requests/%d", swap.ID), nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&models.SwapRequest{}).Where("id = ?", swap.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
