package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GenerateToken gera um valor aleatório para state OAuth e similares
func GenerateToken(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
