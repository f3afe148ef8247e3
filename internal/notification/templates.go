package notification

import (
	"fmt"
	"html"
	"strings"

	"garmentsync/internal/domain"
)

// Templates renders notification emails. PublicURL is the base for links back
// into the app.
type Templates struct {
	AppName   string
	PublicURL string
}

func (t Templates) orderLink(orderID string) string {
	return strings.TrimRight(t.PublicURL, "/") + "/orders/" + orderID
}

func (t Templates) layout(heading, body, link string) string {
	return fmt.Sprintf(
		`<div style="font-family:sans-serif;max-width:560px">`+
			`<h2>%s</h2>%s`+
			`<p><a href="%s">Open in %s</a></p>`+
			`</div>`,
		html.EscapeString(heading), body, html.EscapeString(link), html.EscapeString(t.AppName),
	)
}

func quote(message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return `<blockquote style="border-left:3px solid #ccc;padding-left:12px">` + escaped + `</blockquote>`
}

func (t Templates) OrderUpdate(order domain.Order, update domain.Update) Content {
	link := t.orderLink(order.ID)
	heading := fmt.Sprintf("Update on order %s", order.ID)
	body := fmt.Sprintf("<p>%s (%s) posted an update on style %s for %s:</p>%s",
		html.EscapeString(update.AuthorName), html.EscapeString(string(update.AuthorRole)),
		html.EscapeString(order.StyleNumber), html.EscapeString(order.BuyerName), quote(update.Message))

	return Content{
		Subject: fmt.Sprintf("[%s] New update on order %s", t.AppName, order.ID),
		HTML:    t.layout(heading, body, link),
		Text: fmt.Sprintf("%s posted an update on order %s (style %s):\n\n%s\n\n%s",
			update.AuthorName, order.ID, order.StyleNumber, update.Message, link),
	}
}

func (t Templates) OrderComment(order domain.Order, comment domain.Comment) Content {
	link := t.orderLink(order.ID)
	heading := fmt.Sprintf("New comment on order %s", order.ID)
	body := fmt.Sprintf("<p>%s (%s) commented on style %s:</p>%s",
		html.EscapeString(comment.AuthorName), html.EscapeString(string(comment.AuthorRole)),
		html.EscapeString(order.StyleNumber), quote(comment.Message))

	return Content{
		Subject: fmt.Sprintf("[%s] New comment on order %s", t.AppName, order.ID),
		HTML:    t.layout(heading, body, link),
		Text: fmt.Sprintf("%s commented on order %s (style %s):\n\n%s\n\n%s",
			comment.AuthorName, order.ID, order.StyleNumber, comment.Message, link),
	}
}

// Invitation tells a new stakeholder they were added to an order. note is an
// optional personal message from the inviter.
func (t Templates) Invitation(order domain.Order, stakeholder domain.Stakeholder, note string) Content {
	link := t.orderLink(order.ID)
	heading := fmt.Sprintf("You have been added to order %s", order.ID)
	body := fmt.Sprintf("<p>Hi %s,</p><p>You now have %s access as %s to order %s (style %s, %d units) for %s.</p>",
		html.EscapeString(stakeholder.Name), html.EscapeString(string(stakeholder.Permissions)),
		html.EscapeString(string(stakeholder.Role)), html.EscapeString(order.ID),
		html.EscapeString(order.StyleNumber), order.Quantity, html.EscapeString(order.BuyerName))
	text := fmt.Sprintf("Hi %s,\n\nYou now have %s access as %s to order %s (style %s, %d units) for %s.\n",
		stakeholder.Name, stakeholder.Permissions, stakeholder.Role, order.ID,
		order.StyleNumber, order.Quantity, order.BuyerName)

	if note != "" {
		body += quote(note)
		text += "\n" + note + "\n"
	}

	return Content{
		Subject: fmt.Sprintf("[%s] Invitation to order %s", t.AppName, order.ID),
		HTML:    t.layout(heading, body, link),
		Text:    text + "\n" + link,
	}
}

// Reply answers an inbox notification on behalf of author.
func (t Templates) Reply(original domain.Notification, author, message string) Content {
	link := t.orderLink(original.OrderID)
	heading := fmt.Sprintf("Re: %s", original.Title)
	body := fmt.Sprintf("<p>%s replied:</p>%s<p>In response to:</p>%s",
		html.EscapeString(author), quote(message), quote(original.Message))

	return Content{
		Subject: fmt.Sprintf("Re: %s", original.Title),
		HTML:    t.layout(heading, body, link),
		Text:    fmt.Sprintf("%s replied:\n\n%s\n\n> %s\n\n%s", author, message, original.Message, link),
	}
}
