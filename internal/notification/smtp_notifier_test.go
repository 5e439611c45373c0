package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSMTPNotifier_SendNotification(t *testing.T) {
	cfg := SMTPConfig{Host: "mail.x.test", Port: "25", From: "hr@x.test"}

	t.Run("builds a plain text message", func(t *testing.T) {
		n := NewSMTPNotifier(cfg)
		n.now = func() time.Time { return time.Date(2020, 8, 1, 9, 0, 0, 0, time.UTC) }

		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			assert.Nil(t, a)
			return nil
		}

		err := n.SendNotification(context.Background(), "ada@x.test", "Leave Request Created", "Leave request created for employee: Ada")

		assert.NoError(t, err)
		assert.Equal(t, "mail.x.test:25", gotAddr)
		assert.Equal(t, "hr@x.test", gotFrom)
		assert.Equal(t, []string{"ada@x.test"}, gotTo)
		msg := string(gotMsg)
		assert.True(t, strings.HasPrefix(msg, "From: hr@x.test\r\nTo: ada@x.test\r\nSubject: Leave Request Created\r\n"))
		assert.Contains(t, msg, "Date: Sat, 01 Aug 2020 09:00:00 +0000\r\n")
		assert.True(t, strings.HasSuffix(msg, "\r\n\r\nLeave request created for employee: Ada\r\n"))
	})

	t.Run("uses plain auth when a username is set", func(t *testing.T) {
		withAuth := cfg
		withAuth.Username = "relay"
		withAuth.Password = "secret"
		n := NewSMTPNotifier(withAuth)
		n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			assert.NotNil(t, a)
			return nil
		}

		assert.NoError(t, n.SendNotification(context.Background(), "ada@x.test", "s", "b"))
	})

	t.Run("transport error is returned", func(t *testing.T) {
		n := NewSMTPNotifier(cfg)
		relayErr := errors.New("relay refused")
		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

		err := n.SendNotification(context.Background(), "ada@x.test", "s", "b")

		assert.ErrorIs(t, err, relayErr)
	})

	t.Run("cancelled context sends nothing", func(t *testing.T) {
		n := NewSMTPNotifier(cfg)
		called := false
		n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			called = true
			return nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := n.SendNotification(ctx, "ada@x.test", "s", "b")

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
