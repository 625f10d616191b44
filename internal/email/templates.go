package email

import "fmt"

const verificationSubject = "メールアドレスの確認 | ベジフリ"

func verificationBody(username, verifyURL, token string) string {
	return fmt.Sprintf(`<p>%sさん</p>
<p>ベジフリへのご登録ありがとうございます。</p>
<p>以下のリンクをクリックしてメールアドレスを確認してください。</p>
<p><a href="%s?token=%s">メールアドレスを確認する</a></p>
<p>このメールに心当たりがない場合は破棄してください。</p>`,
		username, verifyURL, token)
}
