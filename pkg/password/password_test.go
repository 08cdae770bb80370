package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("bench123456")
	if err != nil {
		t.Fatalf("生成哈希失败: %v", err)
	}
	if hash == "bench123456" {
		t.Fatal("哈希不应等于明文")
	}
	if !Verify("bench123456", hash) {
		t.Fatal("正确密码应校验通过")
	}
	if Verify("wrong123456", hash) {
		t.Fatal("错误密码不应校验通过")
	}
}

func TestHashNotDeterministic(t *testing.T) {
	// bcrypt自带随机盐，两次哈希结果应不同
	h1, _ := Hash("bench123456")
	h2, _ := Hash("bench123456")
	if h1 == h2 {
		t.Fatal("两次哈希不应相同")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("12345"); err != ErrTooShort {
		t.Fatalf("短密码应返回 ErrTooShort, got %v", err)
	}
	if err := Validate("123456"); err != nil {
		t.Fatalf("合法密码不应报错: %v", err)
	}
	// 多字节字符按字符数而不是字节数计
	if err := Validate("密码密码密码"); err != nil {
		t.Fatalf("六个中文字符应通过: %v", err)
	}
}
