package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/salesai/analyst-api/internal/client"
	"golang.org/x/term"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	api := client.NewAPI(baseURL)
	in := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	fmt.Println("Sales-AI-Analyst")

	for {
		fmt.Print("\n[1] Login  [2] Sign up  [q] Quit: ")
		choice := readLine(in)

		switch choice {
		case "1":
			if token := login(ctx, api, in); token != "" {
				home(in)
				return
			}
		case "2":
			signup(ctx, api, in)
		case "q":
			return
		}
	}
}

func signup(ctx context.Context, api *client.API, in *bufio.Reader) {
	form := &client.SignupForm{}

	fmt.Print("First name: ")
	form.FirstName = readLine(in)
	fmt.Print("Last name: ")
	form.LastName = readLine(in)
	fmt.Print("Phone number: ")
	form.PhoneNumber = readLine(in)
	fmt.Print("Email: ")
	form.Email = readLine(in)
	form.Password = readPassword("Password: ")
	form.ConfirmPassword = readPassword("Confirm password: ")

	errs, err := api.Signup(ctx, form)
	if err != nil {
		fmt.Fprintln(os.Stderr, "signup error:", err)
	}
	if len(errs) > 0 {
		for field, msg := range errs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}

	fmt.Println("You have signed up successfully")
}

func login(ctx context.Context, api *client.API, in *bufio.Reader) string {
	fmt.Print("Email: ")
	email := readLine(in)
	password := readPassword("Password: ")

	token, errs, err := api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "login error:", err)
	}
	if len(errs) > 0 {
		for field, msg := range errs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return ""
	}

	fmt.Println("Login successful")

	if profile, err := api.Me(ctx, token); err == nil {
		fmt.Printf("Logged in as %v %v\n", profile["firstName"], profile["lastName"])
	}

	return token
}

func home(in *bufio.Reader) {
	view := client.NewHomeView()

	for {
		fmt.Printf("\n-- %s --\n%s\n", view.Selected(), view.Content())

		if view.Selected() == client.OptionMessages && view.CurrentChatPeer() != "" {
			for _, msg := range view.Messages(view.CurrentChatPeer()) {
				fmt.Println(" >", msg)
			}
			fmt.Print("Message (empty to go back): ")
			text := readLine(in)
			if text == "" {
				view.CloseChat()
				continue
			}
			view.SendMessage(text)
			continue
		}

		fmt.Print("Option (Home/Explore/Notifications/Messages/Bookmarks/Lists/Profile/More), chat:<peer>, or q: ")
		choice := readLine(in)
		switch {
		case choice == "q":
			return
		case strings.HasPrefix(choice, "chat:"):
			if !view.OpenChat(strings.TrimPrefix(choice, "chat:")) {
				fmt.Println("No such peer")
			}
		case choice != "":
			view.Select(choice)
		}
	}
}

func readLine(in *bufio.Reader) string {
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func readPassword(prompt string) string {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(b)
}
