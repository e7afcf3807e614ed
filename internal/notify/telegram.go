package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const DefaultTelegramAPI = "https://api.telegram.org"

// Telegram sends the composed message through the Bot API sendMessage method.
type Telegram struct {
	client *http.Client
	apiURL string
	token  string
	chatID string
}

func NewTelegram(client *http.Client, apiURL, token, chatID string) *Telegram {
	if client == nil {
		client = http.DefaultClient
	}
	if apiURL == "" {
		apiURL = DefaultTelegramAPI
	}
	return &Telegram{client: client, apiURL: strings.TrimRight(apiURL, "/"), token: token, chatID: chatID}
}

type sendMessageReq struct {
	ChatID    string `json:"chat_id"`
	ParseMode string `json:"parse_mode"`
	Text      string `json:"text"`
}

// Notify fails on transport errors and on any non-2xx answer.
func (t *Telegram) Notify(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendMessageReq{ChatID: t.chatID, ParseMode: "html", Text: Compose(msg)})
	if err != nil {
		return fmt.Errorf("encode telegram message: %w", err)
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		// the url carries the bot token, keep it out of the error
		return fmt.Errorf("send to telegram: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram answered %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// Log writes the message to the request logger. Used when no bot is configured.
type Log struct{}

func (Log) Notify(ctx context.Context, msg Message) error {
	zerolog.Ctx(ctx).Info().
		Str("order_id", msg.Order.ID).
		Str("text", Compose(msg)).
		Msg("order notification")
	return nil
}
