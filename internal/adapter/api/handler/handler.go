package handler

import (
	"marketdz/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	itemHandler     *ItemHandler
	photoHandler    *PhotoHandler
	messageHandler  *MessageHandler
	securityHandler *SecurityHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	verificationUseCase *usecase.VerificationUseCase,
	itemUseCase *usecase.ItemUseCase,
	locationUseCase *usecase.LocationUseCase,
	photoUseCase *usecase.PhotoUseCase,
	messageUseCase *usecase.MessageUseCase,
	securityUseCase *usecase.SecurityUseCase,
) {
	authHandler = NewAuthHandler(authUseCase, verificationUseCase)
	userHandler = NewUserHandler(authUseCase)
	itemHandler = NewItemHandler(itemUseCase, locationUseCase)
	photoHandler = NewPhotoHandler(photoUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	securityHandler = NewSecurityHandler(securityUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetItemHandler() *ItemHandler {
	return itemHandler
}

func GetPhotoHandler() *PhotoHandler {
	return photoHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetSecurityHandler() *SecurityHandler {
	return securityHandler
}
