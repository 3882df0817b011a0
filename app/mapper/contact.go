package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-website/app/dto"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/service"
)

const contactAcceptedMessage = "Thank you for your message! We'll be in touch soon."

func ContactReceiptToResponse(receipt *service.ContactReceipt) dto.ContactReceiptResponse {
	return dto.ContactReceiptResponse{
		ReferenceID: receipt.ReferenceID,
		ReceivedAt:  receipt.ReceivedAt.UTC().Format(time.RFC3339),
		Message:     contactAcceptedMessage,
	}
}

func ContactMessageToResponse(item *entity.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:          item.ID,
		ReferenceID: item.ReferenceID,
		Name:        item.Name,
		Email:       item.Email,
		Company:     item.Company,
		Subject:     item.Subject,
		Message:     item.Message,
		RemoteIP:    item.RemoteIP,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ContactMessagesToResponse(items []*entity.ContactMessage) dto.ListContactMessagesResponse {
	result := make([]dto.ContactMessageResponse, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		result = append(result, ContactMessageToResponse(item))
	}
	return dto.ListContactMessagesResponse{Messages: result}
}
