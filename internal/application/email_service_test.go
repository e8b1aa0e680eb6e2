package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/mailer"
)

type fakeEmailRepo struct {
	mu       sync.Mutex
	messages map[string]*entity.EmailMessage
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{messages: make(map[string]*entity.EmailMessage)}
}

func (r *fakeEmailRepo) Create(_ context.Context, m *entity.EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.ID] = m
	return nil
}

func (r *fakeEmailRepo) List(_ context.Context) ([]*entity.EmailMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.EmailMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeEmailRepo) SetFlagged(_ context.Context, id string, flagged bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.IsFlagged = flagged
	return nil
}

func newEmailService(users *fakeUserRepo, messages *fakeEmailRepo, queue *fakeQueue, words ...string) *EmailService {
	return NewEmailService(messages, users, newGuard(users, words...), queue, quietLogger())
}

func TestEmailSend(t *testing.T) {
	users := newFakeUserRepo(&entity.User{
		ID: "u1", FirstName: "Mona", LastName: "Berg",
		Email: "mona@example.com", IsAccountVerified: true,
	})
	messages := newFakeEmailRepo()
	queue := &fakeQueue{}
	svc := newEmailService(users, messages, queue)

	msg, err := svc.Send(context.Background(), "u1", SendMessageRequest{
		To:      "someone@example.com",
		Subject: "Route question",
		Message: "Which charger did you use outside Lillehammer?",
	})

	require.NoError(t, err)
	assert.Equal(t, "mona@example.com", msg.FromEmail)
	assert.Equal(t, "user message", msg.Category)
	require.Len(t, queue.jobs, 1)
}

func TestEmailSendRequiresVerifiedAccount(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", Email: "mona@example.com"})
	messages := newFakeEmailRepo()
	queue := &fakeQueue{}
	svc := newEmailService(users, messages, queue)

	_, err := svc.Send(context.Background(), "u1", SendMessageRequest{
		To:      "someone@example.com",
		Subject: "Route question",
		Message: "Which charger did you use outside Lillehammer?",
	})

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "Your account is not verified! You cannot send message to user.", policyErr.Message)
	assert.Empty(t, messages.messages)
	assert.Empty(t, queue.jobs)
}

func TestEmailSendGreetsRecipientByName(t *testing.T) {
	users := newFakeUserRepo(
		&entity.User{
			ID: "u1", FirstName: "Mona", LastName: "Berg",
			Email: "mona@example.com", IsAccountVerified: true,
		},
		&entity.User{
			ID: "u2", FirstName: "Ola", LastName: "Vik",
			Email: "ola@example.com", IsAccountVerified: true,
		},
	)
	queue := &fakeQueue{}
	svc := newEmailService(users, newFakeEmailRepo(), queue)
	ctx := context.Background()

	_, err := svc.Send(ctx, "u1", SendMessageRequest{
		To:      "ola@example.com",
		Subject: "Route question",
		Message: "Which charger did you use outside Lillehammer?",
	})
	require.NoError(t, err)

	_, err = svc.Send(ctx, "u1", SendMessageRequest{
		To:      "stranger@example.com",
		Subject: "Route question",
		Message: "Which charger did you use outside Lillehammer?",
	})
	require.NoError(t, err)

	require.Len(t, queue.jobs, 2)
	first := queue.jobs[0].(mailer.EmailJob)
	second := queue.jobs[1].(mailer.EmailJob)
	assert.Equal(t, "Ola Vik", first.Name)
	assert.Equal(t, "stranger@example.com", second.Name)
}
