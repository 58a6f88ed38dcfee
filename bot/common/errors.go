package common

import (
	"errors"
	"fmt"

	"casino/domain/entities"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RespondWithError sends an ephemeral error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FollowUpWithError sends an ephemeral error message after a deferred response
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending follow-up error message: %v", err)
	}
}

// UserFacingMessage translates domain errors into messages safe to show a
// player. Unknown errors get a generic message; the caller logs the detail.
func UserFacingMessage(err error) (string, bool) {
	var insufficient *entities.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return fmt.Sprintf("You don't have enough %s. You have %s but need %s.",
			insufficient.Currency,
			utils.FormatShortNotation(insufficient.Have),
			utils.FormatShortNotation(insufficient.Need)), true
	}

	var cooldown *entities.OnCooldownError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("You can use `%s` again in %s.",
			cooldown.Action, utils.FormatCooldown(cooldown.Remaining)), true
	}

	var validation *entities.ValidationError
	if errors.As(err, &validation) {
		return validation.Reason, true
	}

	var limit *entities.LimitExceededError
	if errors.As(err, &limit) {
		return limit.Error(), true
	}

	if errors.Is(err, entities.ErrNotFound) {
		return "No account found. Play a game or claim a reward to get started.", true
	}

	return "Something went wrong. Please try again later.", false
}

// HandleServiceError logs an error and responds with a player-safe message
func HandleServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	message, expected := UserFacingMessage(err)
	entry := log.WithFields(log.Fields{
		"command": command,
		"error":   err,
	})
	if expected {
		entry.Debug("command rejected")
	} else {
		entry.Error("command failed")
	}
	RespondWithError(s, i, message)
}
