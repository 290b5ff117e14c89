package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/Lohithsai06/Eco-finds/configs"
	"github.com/Lohithsai06/Eco-finds/models"
	"github.com/Lohithsai06/Eco-finds/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

var emailRegex = regexp.MustCompile(`^(([^<>()[\]\.,;:\s@\"]+(\.[^<>()[\]\.,;:\s@\"]+)*)|(\".+\"))@(([^<>()[\]\.,;:\s@\"]+\.)+[^<>()[\]\.,;:\s@\"]{2,})$`)

// UserSignUp creates an email/password account and its profile document.
func UserSignUp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if reqBody.Username == "" || reqBody.Email == "" || reqBody.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill in all fields",
			Result:  nil,
		})
	}

	if len(reqBody.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Password must be at least 6 characters",
			Result:  nil,
		})
	}

	if reqBody.Password != reqBody.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Passwords do not match",
			Result:  nil,
		})
	}

	if !emailRegex.MatchString(reqBody.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid email address",
			Result:  nil,
		})
	}

	//Check if the email is already taken
	var existingUser models.User
	err := userCollection.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existingUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
			Result:  nil,
		})
	} else if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "An account with this email already exists",
			Result:  nil,
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
			Result:  nil,
		})
	}

	newUser := models.User{
		Uid:       primitive.NewObjectID().Hex(),
		Email:     reqBody.Email,
		Username:  reqBody.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if _, err := userCollection.InsertOne(ctx, newUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving user, please try again later",
		})
	}

	token, err := createJwt(newUser.Uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User created successfully",
		Result: &fiber.Map{
			"data": fiber.Map{
				"uid":       newUser.Uid,
				"email":     newUser.Email,
				"username":  newUser.Username,
				"createdAt": newUser.CreatedAt,
				"token":     token,
			},
		},
	})
}

// UserSignIn checks credentials and returns a session token. Error messages
// mirror what the storefront shows for the matching auth failures.
func UserSignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if reqBody.Email == "" || reqBody.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill in all fields",
			Result:  nil,
		})
	}

	var existingUser models.User
	err := userCollection.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existingUser)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No account found with this email",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching from database",
			Result:  nil,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(reqBody.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid password",
			Result:  nil,
		})
	}

	token, err := createJwt(existingUser.Uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result: &fiber.Map{
			"data": fiber.Map{
				"uid":       existingUser.Uid,
				"email":     existingUser.Email,
				"username":  existingUser.Username,
				"createdAt": existingUser.CreatedAt,
				"token":     token,
			},
		},
	})
}

func createJwt(userId string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userId,
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJwtSecret()))
}

// OAuthLogin signs a user in with a Google id token. The first sign-in
// creates the profile document, defaulting the username to the provider's
// display name or "User".
func OAuthLogin(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Provider string `json:"provider"`
		Token    string `json:"token"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	var userInfo map[string]string
	var err error
	switch reqBody.Provider {
	case "google":
		userInfo, err = ValidateGoogleToken(reqBody.Token)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid provider",
			Result:  nil,
		})
	}

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Failed to sign in with Google",
			Result:  nil,
		})
	}

	uid := userInfo["uid"]
	email := userInfo["email"]
	username := userInfo["name"]
	if username == "" {
		username = "User"
	}

	var existingUser models.User
	err = userCollection.FindOne(ctx, bson.M{"_id": uid}).Decode(&existingUser)

	if err == mongo.ErrNoDocuments {
		//First sign-in: create a default profile document
		newUser := models.User{
			Uid:       uid,
			Email:     email,
			Username:  username,
			CreatedAt: time.Now(),
		}
		if _, err := userCollection.InsertOne(ctx, newUser); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error creating user",
				Result:  nil,
			})
		}
		existingUser = newUser
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user",
			Result:  nil,
		})
	}

	jwtToken, err := createJwt(existingUser.Uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating token",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result: &fiber.Map{
			"data": fiber.Map{
				"uid":       existingUser.Uid,
				"email":     existingUser.Email,
				"username":  existingUser.Username,
				"createdAt": existingUser.CreatedAt,
				"token":     jwtToken,
			},
		},
	})
}

// ValidateGoogleToken checks the id token against Google's tokeninfo endpoint
// and extracts the stable uid plus profile fields.
func ValidateGoogleToken(token string) (map[string]string, error) {
	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid Google token")
	}

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	sub, ok1 := data["sub"].(string)
	email, ok2 := data["email"].(string)
	if !ok1 || !ok2 {
		return nil, errors.New("missing sub or email")
	}
	name, _ := data["name"].(string)

	return map[string]string{
		"uid":   sub,
		"email": email,
		"name":  name,
	}, nil
}

// UserSignOut acknowledges sign-out; the session token is discarded by the
// client, nothing is kept server-side.
func UserSignOut(c *fiber.Ctx) error {
	token := c.Get("Authorization")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "No auth token, access denied",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User signed out successfully",
	})
}
