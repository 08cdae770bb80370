package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// 游戏账号密码规则：过短的密码在进bcrypt之前就拒绝
const (
	MinLength = 6
	hashCost  = bcrypt.DefaultCost
)

var ErrTooShort = errors.New("密码长度不能少于6位")

// Validate 注册前的密码校验
func Validate(plain string) error {
	if len([]rune(plain)) < MinLength {
		return ErrTooShort
	}
	return nil
}

// Hash 生成密码哈希
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify 校验密码与哈希是否匹配
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
