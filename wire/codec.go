package wire

import (
	"context"
	"fmt"

	"github.com/PelicanPlatform/classad/classad"
	"github.com/bbockelm/cedar/message"
)

// Request is one administrative protocol request frame: a command code plus
// the ClassAd-encoded attribute-operation body built by attr.Codec.
type Request struct {
	Command int
	Body    *classad.ClassAd
}

// Reply is one administrative protocol reply frame: a status code, an
// optional error message, and zero or more batch-status ads (a stat-style
// reply may carry many; a manage-style reply carries at most one).
type Reply struct {
	Code    int
	Message string
	Ads     []*classad.ClassAd
}

// Send writes req to conn's stream and blocks until the frame is flushed.
func Send(ctx context.Context, conn *Conn, req Request) error {
	s := conn.Stream()
	msg := message.NewMessageForStream(s)
	if err := msg.PutInt(ctx, req.Command); err != nil {
		return fmt.Errorf("send command %d: %w", req.Command, err)
	}
	if req.Body != nil {
		if err := msg.PutClassAd(ctx, req.Body); err != nil {
			return fmt.Errorf("send request body: %w", err)
		}
	}
	if err := msg.FinishMessage(ctx); err != nil {
		return fmt.Errorf("finish request message: %w", err)
	}
	return nil
}

// RecvReply reads a reply: a status code ad followed, when the code is 0
// and wantData is set, by data ads up to and including one with a non-zero
// EndOfReply. wantData controls whether data ads are expected at all
// (manage-style requests like set/unset carry none).
func RecvReply(ctx context.Context, conn *Conn, wantData bool) (*Reply, error) {
	s := conn.Stream()

	statusMsg := message.NewMessageFromStream(s)
	statusAd, err := statusMsg.GetClassAd(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reply status: %w", err)
	}

	code, _ := statusAd.EvaluateAttrInt("ErrorCode")
	text, _ := statusAd.EvaluateAttrString("ErrorString")
	reply := &Reply{Code: int(code), Message: text}

	if code != 0 || !wantData {
		return reply, nil
	}

	for {
		dataMsg := message.NewMessageFromStream(s)
		ad, err := dataMsg.GetClassAd(ctx)
		if err != nil {
			return reply, fmt.Errorf("read reply data ad: %w", err)
		}
		if end, ok := ad.EvaluateAttrInt("EndOfReply"); ok && end != 0 {
			break
		}
		reply.Ads = append(reply.Ads, ad)
	}
	return reply, nil
}

// RoundTrip sends req and reads back its reply in one call, the shape every
// IFL entry point needs.
func RoundTrip(ctx context.Context, conn *Conn, req Request, wantData bool) (*Reply, error) {
	if err := Send(ctx, conn, req); err != nil {
		return nil, err
	}
	return RecvReply(ctx, conn, wantData)
}
