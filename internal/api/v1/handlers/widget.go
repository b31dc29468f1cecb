package handlers

import (
	"net/http"

	"github.com/maslabs/chatwidget/internal/services/session"
	"github.com/rs/zerolog/log"
)

// widgetJS is the embeddable browser rendition of the widget: a message
// list, an input box, and a typing indicator wired to the reply endpoint.
const widgetJS = `(function () {
	var base = document.currentScript.src.replace(/\/v1\/widget\.js.*$/, "");

	var box = document.createElement("div");
	box.id = "mas-chatwidget";
	var list = document.createElement("div");
	list.className = "mas-chatwidget-messages";
	var input = document.createElement("input");
	input.type = "text";
	input.placeholder = "Type a message...";
	box.appendChild(list);
	box.appendChild(input);
	document.body.appendChild(box);

	var awaiting = false;
	var typing = null;

	function append(sender, text) {
		var entry = document.createElement("div");
		entry.className = "mas-chatwidget-" + sender;
		entry.textContent = text;
		list.appendChild(entry);
		list.scrollTop = list.scrollHeight;
		return entry;
	}

	function settle(sender, text) {
		if (typing) { list.removeChild(typing); typing = null; }
		append(sender, text);
		awaiting = false;
		input.disabled = false;
		input.focus();
	}

	function submit() {
		var text = input.value.trim();
		if (!text || awaiting) { return; }
		append("user", text);
		input.value = "";
		awaiting = true;
		input.disabled = true;
		typing = append("bot", "...");
		fetch(base + "/v1/chat/reply?message=" + encodeURIComponent(text))
			.then(function (res) {
				return res.json().then(function (body) {
					if (body.response) { settle("bot", body.response); }
					else { settle("error", body.error || "Something went wrong"); }
				});
			})
			.catch(function () { settle("error", "Unable to reach the chat service."); });
	}

	input.addEventListener("keydown", function (e) {
		if (e.key === "Enter" && !e.shiftKey) { e.preventDefault(); submit(); }
	});
})();
`

// HandleWidgetJS serves the widget embed and mints an anonymous session for
// the page that loaded it.
func HandleWidgetJS(sessionService *session.Service, w http.ResponseWriter, r *http.Request) {
	log.Info().
		Str("client_ip", r.RemoteAddr).
		Str("user_agent", r.UserAgent()).
		Msg("Widget.js requested")

	if err := sessionService.CreateSession(w, r.URL.Query().Get("widget_id")); err != nil {
		log.Error().Err(err).Msg("Failed to create session for widget")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Set appropriate headers
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	if _, err := w.Write([]byte(widgetJS)); err != nil {
		return
	}

	log.Info().
		Str("client_ip", r.RemoteAddr).
		Int("content_length", len(widgetJS)).
		Msg("Widget.js served successfully")
}
