package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/message"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// MessagesHandler serves /messages. Requires JWT auth.
type MessagesHandler struct {
	send  *message.SendMessage
	inbox *message.Inbox
	log   zerolog.Logger
}

func NewMessagesHandler(send *message.SendMessage, inbox *message.Inbox, log zerolog.Logger) *MessagesHandler {
	return &MessagesHandler{send: send, inbox: inbox, log: log}
}

func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	var body struct {
		ReceiverID string `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	receiver, err := domain.ParseUserID(body.ReceiverID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid receiver id")
		return
	}
	msg, err := h.send.Execute(r.Context(), message.SendMessageInput{
		Actor:      actor,
		ReceiverID: receiver,
		Content:    body.Content,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessagesHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	convs, err := h.inbox.Conversations(r.Context(), actor)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"conversations": convs})
}

// Thread returns the conversation with {userID}, oldest first.
func (h *MessagesHandler) Thread(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	other, ok := userParam(w, r, "userID")
	if !ok {
		return
	}
	msgs, err := h.inbox.Thread(r.Context(), actor, other)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	if msgs == nil {
		msgs = []*domain.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

func (h *MessagesHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity(w, r)
	if !ok {
		return
	}
	other, ok := userParam(w, r, "userID")
	if !ok {
		return
	}
	n, err := h.inbox.MarkRead(r.Context(), actor, other)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}
