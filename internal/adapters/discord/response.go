package discord

import (
	"bytes"
	"log"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/application"
	pkgdiscord "campusevents/pkg/discord"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	return userDisplayName(member.User)
}

func userDisplayName(user *discordgo.User) string {
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

func respondEmbeds(s *discordgo.Session, i *discordgo.Interaction, embeds ...*discordgo.MessageEmbed) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: embeds,
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Printf("❌ Interaction response failed: %v", err)
	}
}

func respondNotification(s *discordgo.Session, i *discordgo.Interaction, n application.Notification) {
	respondEmbeds(s, i, notificationEmbed(n))
}

func notificationEmbed(n application.Notification) *discordgo.MessageEmbed {
	return pkgdiscord.BuildNotificationEmbed(n.Title, n.Description, n.Variant == application.VariantDestructive)
}

// respondFile sends an ephemeral message with a single attachment.
func respondFile(s *discordgo.Session, i *discordgo.Interaction, embed *discordgo.MessageEmbed, name, contentType string, content []byte) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Files:  []*discordgo.File{{Name: name, ContentType: contentType, Reader: bytes.NewReader(content)}},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Printf("❌ File response failed (%s): %v", name, err)
	}
}

func respondModal(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: data,
	}); err != nil {
		log.Printf("❌ Modal response failed (%s): %v", data.CustomID, err)
	}
}
