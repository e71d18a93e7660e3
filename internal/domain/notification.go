package domain

import (
	"fmt"
	"time"
)

// NotificationKind names a user-facing event.
type NotificationKind string

const (
	NotifyNewRequest          NotificationKind = "new_request"
	NotifyRequestApproved     NotificationKind = "request_approved"
	NotifyRequestRejected     NotificationKind = "request_rejected"
	NotifyMilestoneAdded      NotificationKind = "milestone_added"
	NotifyMilestoneSubmitted  NotificationKind = "milestone_submitted"
	NotifyMilestoneApproved   NotificationKind = "milestone_approved"
	NotifyMilestoneRejected   NotificationKind = "milestone_rejected"
	NotifyMentorshipCompleted NotificationKind = "mentorship_completed"
	NotifyNewMessage          NotificationKind = "new_message"
)

// Notification is handed to the notification sink after a successful mutation.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	RecipientID UserID           `json:"recipient_id"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	MentorID    *UserID          `json:"mentor_id,omitempty"`
	MentorName  string           `json:"mentor_name,omitempty"`
	ProjectID   *ProjectID       `json:"project_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// RequestApproved tells the student their mentor accepted.
func RequestApproved(p *Project, mentor *MentorProfile, now time.Time) Notification {
	return Notification{
		Kind:        NotifyRequestApproved,
		RecipientID: p.StudentID,
		Title:       "Mentor Approved",
		Body:        fmt.Sprintf("%s has approved your mentorship request! You can now chat with them.", mentor.Name),
		MentorID:    &mentor.ID,
		MentorName:  mentor.Name,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
}

// RequestRejected tells the student their mentor declined.
func RequestRejected(p *Project, mentor *MentorProfile, now time.Time) Notification {
	return Notification{
		Kind:        NotifyRequestRejected,
		RecipientID: p.StudentID,
		Title:       "Mentor Request Rejected",
		Body:        fmt.Sprintf("%s declined your mentorship request. You can try another mentor.", mentor.Name),
		MentorID:    &mentor.ID,
		MentorName:  mentor.Name,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
}

// NewRequest tells a mentor a student asked for guidance.
func NewRequest(p *Project, studentName string, now time.Time) Notification {
	return Notification{
		Kind:        NotifyNewRequest,
		RecipientID: *p.MentorID,
		Title:       "New Mentorship Request",
		Body:        fmt.Sprintf("%s requested your mentorship for %q.", studentName, p.Title),
		MentorID:    p.MentorID,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
}

// MilestoneAdded tells the student a new deliverable exists.
func MilestoneAdded(p *Project, m *Milestone, now time.Time) Notification {
	return Notification{
		Kind:        NotifyMilestoneAdded,
		RecipientID: p.StudentID,
		Title:       "New Milestone",
		Body:        fmt.Sprintf("Your mentor added milestone %q.", m.Title),
		MentorID:    p.MentorID,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
}

// SubmissionReceived tells the mentor a submission awaits review.
func SubmissionReceived(p *Project, m *Milestone, now time.Time) Notification {
	return Notification{
		Kind:        NotifyMilestoneSubmitted,
		RecipientID: *p.MentorID,
		Title:       "Milestone Submitted",
		Body:        fmt.Sprintf("Milestone %q was submitted and is waiting for your feedback.", m.Title),
		MentorID:    p.MentorID,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
}

// MilestoneEvaluated tells the student the outcome of a review.
func MilestoneEvaluated(p *Project, m *Milestone, now time.Time) Notification {
	n := Notification{
		RecipientID: p.StudentID,
		MentorID:    p.MentorID,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
	if m.Status == MilestoneCompleted {
		n.Kind = NotifyMilestoneApproved
		n.Title = "Milestone Approved"
		n.Body = fmt.Sprintf("Milestone %q has been approved by your mentor!", m.Title)
		return n
	}
	n.Kind = NotifyMilestoneRejected
	n.Title = "Milestone Rejected"
	n.Body = fmt.Sprintf("Milestone %q needs revision.", m.Title)
	if m.Feedback != nil && *m.Feedback != "" {
		n.Body += " Feedback: " + *m.Feedback
	}
	return n
}

// MentorshipCompleted tells the student the mentor closed the engagement.
func MentorshipCompleted(p *Project, now time.Time) Notification {
	return Notification{
		Kind:        NotifyMentorshipCompleted,
		RecipientID: p.StudentID,
		Title:       "Mentorship Completed",
		Body:        fmt.Sprintf("Your mentor marked %q as completed.", p.Title),
		MentorID:    p.MentorID,
		ProjectID:   &p.ID,
		CreatedAt:   now,
	}
}

// NewMessage tells the receiver someone wrote to them.
func NewMessage(msg *Message, senderName string) Notification {
	return Notification{
		Kind:        NotifyNewMessage,
		RecipientID: msg.ReceiverID,
		Title:       "New Message",
		Body:        fmt.Sprintf("%s sent you a message. Check your chat to read it.", senderName),
		CreatedAt:   msg.SentAt,
	}
}
