package email_test

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"project-request-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP accepts one session without STARTTLS or AUTH and hands back the
// DATA payload it received.
func fakeSMTP(t *testing.T, rejectRcpt bool) (string, string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		tp := textproto.NewConn(conn)
		_ = tp.PrintfLine("220 fake ESMTP")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"):
				_ = tp.PrintfLine("250-fake")
				_ = tp.PrintfLine("250 8BITMIME")
			case strings.HasPrefix(cmd, "HELO"):
				_ = tp.PrintfLine("250 fake")
			case strings.HasPrefix(cmd, "MAIL FROM"):
				_ = tp.PrintfLine("250 OK")
			case strings.HasPrefix(cmd, "RCPT TO"):
				if rejectRcpt {
					_ = tp.PrintfLine("550 mailbox unavailable")
					continue
				}
				_ = tp.PrintfLine("250 OK")
			case cmd == "DATA":
				_ = tp.PrintfLine("354 go ahead")
				lines, err := tp.ReadDotLines()
				if err != nil {
					return
				}
				received <- strings.Join(lines, "\r\n")
				_ = tp.PrintfLine("250 queued")
			case cmd == "QUIT":
				_ = tp.PrintfLine("221 bye")
				return
			default:
				_ = tp.PrintfLine("250 OK")
			}
		}
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port, received
}

func testMessage() *email.Message {
	return &email.Message{
		From:    email.Address{Name: "Dev Scholar", Email: "studio@example.com"},
		To:      email.Address{Email: "studio@example.com"},
		ReplyTo: email.Address{Email: "ada@x.com"},
		Subject: "New Project Request: msc - Ada",
		Text:    "Name: Ada",
		HTML:    "<p>Name: Ada</p>",
	}
}

func TestSMTPTransport_Send(t *testing.T) {
	host, port, received := fakeSMTP(t, false)
	transport := email.NewSMTPTransport(host, port, "studio@example.com", "secret")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, transport.Send(ctx, testMessage()))

	var raw string
	select {
	case raw = <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("fake server received no data")
	}

	msg, err := mail.ReadMessage(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, `"Dev Scholar" <studio@example.com>`, msg.Header.Get("From"))
	assert.Equal(t, "<ada@x.com>", msg.Header.Get("Reply-To"))
	assert.Equal(t, "New Project Request: msc - Ada", msg.Header.Get("Subject"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	var bodies []string
	var types []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(part)
		require.NoError(t, err)
		types = append(types, strings.SplitN(part.Header.Get("Content-Type"), ";", 2)[0])
		bodies = append(bodies, string(b))
	}
	assert.Equal(t, []string{"text/plain", "text/html"}, types)
	assert.Equal(t, []string{"Name: Ada", "<p>Name: Ada</p>"}, bodies)
}

func TestSMTPTransport_SendHTMLOnly(t *testing.T) {
	host, port, received := fakeSMTP(t, false)
	transport := email.NewSMTPTransport(host, port, "studio@example.com", "secret")

	msg := testMessage()
	msg.Text = ""
	msg.ReplyTo = email.Address{}
	msg.Subject = "Project Request Received - Dev Scholar ✅"
	require.NoError(t, transport.Send(context.Background(), msg))

	parsed, err := mail.ReadMessage(strings.NewReader(<-received))
	require.NoError(t, err)
	assert.Empty(t, parsed.Header.Get("Reply-To"))
	assert.True(t, strings.HasPrefix(parsed.Header.Get("Content-Type"), "text/html"))

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Project Request Received - Dev Scholar ✅", subject)
}

func TestSMTPTransport_RejectedRecipient(t *testing.T) {
	host, port, _ := fakeSMTP(t, true)
	transport := email.NewSMTPTransport(host, port, "studio@example.com", "secret")

	err := transport.Send(context.Background(), testMessage())
	assert.ErrorContains(t, err, "smtp RCPT TO")
}

func TestSMTPTransport_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	ln.Close()

	transport := email.NewSMTPTransport(host, port, "u", "p")
	err = transport.Send(context.Background(), testMessage())
	assert.ErrorContains(t, err, "smtp dial")
}

func TestMessageValidate(t *testing.T) {
	msg := testMessage()
	msg.To = email.Address{}
	assert.ErrorContains(t, msg.Validate(), "no recipient")

	msg = testMessage()
	msg.Text, msg.HTML = "", ""
	assert.ErrorContains(t, msg.Validate(), "no body")
}
