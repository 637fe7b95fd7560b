// devtoken mints a three-segment HS256 token with a sub claim for exercising
// identity-required routes locally. The API decodes the payload without
// verifying signatures, so any secret works.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func main() {
	sub := flag.String("sub", "", "subject claim (defaults to a random UUID)")
	secret := flag.String("secret", "dev-secret", "HMAC signing secret")
	flag.Parse()

	subject := *sub
	if subject == "" {
		subject = uuid.NewString()
	}

	claims := jwt.MapClaims{
		"iss": "pupper-dev",
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}
