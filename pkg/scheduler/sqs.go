package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
)

// SQSAPI is the subset of the SQS client used by SQSScheduler.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler implements the Scheduler interface using AWS SQS.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Scheduler = (*SQSScheduler)(nil)

// ScheduleEarning sends the earning to the queue. The earning stays pending until the consumer
// posts it.
func (s *SQSScheduler) ScheduleEarning(ctx context.Context, req wallet.EarningRequest) (models.EarningStatus, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.EarningPending, fmt.Errorf("failed to marshal earning for SQS: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.QueueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"case_id": {DataType: aws.String("String"), StringValue: aws.String(req.CaseID)},
		},
	})
	if err != nil {
		return models.EarningPending, fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return models.EarningPending, nil
}

// DecodeEarning parses a queued earning message body.
func DecodeEarning(body string) (wallet.EarningRequest, error) {
	var req wallet.EarningRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return req, fmt.Errorf("failed to unmarshal earning message: %w", err)
	}
	return req, nil
}
