package generation

import (
	"fmt"

	"github.com/ziadkadry99/chunlian/internal/model"
)

// couplet prompt; theme and style go in verbatim.
const coupletPromptTemplate = `请为一个关于"%s"的主题创作一副中文春联。
    风格：%s。
    请返回JSON格式，包含以下字段：
    - upper: 上联 (7-11字)
    - lower: 下联 (7-11字)
    - horizontal: 横批 (4字)
    - explanation: 寓意解释 (简短)
    
    只返回JSON字符串，不要包含markdown标记。`

const fortunePrompt = `请为用户抽取一个2026年(马年)的新年运势。
    请返回JSON格式，包含以下字段：
    - id: 随机UUID
    - title: 运势标题 (如"大吉"、"上上签"等)
    - content: 运势签文 (古风诗句，4句)
    - blessing: 签文的详细解读和白话祝福 (至少100字)
    - type: 随机从 [career, love, health, wealth] 中选一个
    - upper_trigram: 上卦 (如"乾"、"坤"、"震"、"巽"、"坎"、"离"、"艮"、"兑"中的一个字)
    - lower_trigram: 下卦 (如"乾"、"坤"、"震"、"巽"、"坎"、"离"、"艮"、"兑"中的一个字)
    
    只返回JSON字符串，不要包含markdown标记。`

// CoupletPrompt builds the instruction for a couplet about theme.
func CoupletPrompt(theme string, style model.Style) string {
	if style == "" {
		style = model.StyleTraditional
	}
	return fmt.Sprintf(coupletPromptTemplate, theme, style)
}

// FortunePrompt returns the fixed fortune-drawing instruction.
func FortunePrompt() string {
	return fortunePrompt
}
