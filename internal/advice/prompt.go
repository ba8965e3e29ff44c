package advice

// AnalysisPrompt — the one instruction every request runs under. The input
// (text or chat screenshot) is attached as user content after it.
const AnalysisPrompt = `你是一位心理學與人際溝通專家。
使用者會傳來一段對話內容（文字或聊天截圖），請分析其中的潛台詞、情緒狀態，以及說話者的心理需求，並給出具體的回應建議。

輸出規則：
1. 用條列式回答，每一段以一個 emoji 開頭（例如 🔍 觀察、💭 潛台詞、💡 建議）。
2. 語氣溫暖且專業，不說教。
3. 純文字輸出，禁止使用任何 Markdown 符號（** ## ---）。`

// Canned replies. These go to the end user verbatim, so they stay fixed
// strings rather than formatted messages.
const (
	ReplyCannotReadImage = "抱歉，這張圖片我讀不出來 🙏 請再傳一次清楚一點的聊天截圖。"
	ReplySensitive       = "這段內容涉及比較敏感的議題，我沒辦法分析 🙏 換一段內容試試吧。"
	ReplyEmpty           = "我一時想不出分析結果 💦 請再傳一次試試。"
	ReplyConfigError     = "系統設定有誤，暫時無法分析，請聯絡管理員 🔧"
	ReplyAuthError       = "系統授權失效，暫時無法分析，請聯絡管理員 🔑"
	ReplyBusy            = "系統目前忙線中，請稍後再試 🙏"
	ReplyUnknownError    = "系統出了點狀況，請稍後再試 🙏"
)
