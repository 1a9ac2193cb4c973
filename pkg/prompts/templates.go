package prompts

// Template text is data. English and Chinese variants are kept side by side
// so drift between them is easy to spot in review.

const characterPromptEN = `1. Character Information:
<character_info>
%s
</character_info>

I will analyze and enrich the character information through the following steps:

1. First, I will carefully analyze the provided character information and extract the key facts:
   - What is the character's name and basic identity?
   - What are the explicit background elements mentioned?
   - What are the character's known personality traits?
   - What are the key points in the character's physical description?

2. Next, I will think about the character's deeper characteristics:
   - What is the character's possible growth experience?
   - What are the motivations and values behind the character's actions?
   - How are the character's strengths and weaknesses formed?
   - What skills and knowledge is the character likely to have?

3. Then, I will consider the character's current situation:
   - What is the character currently facing?
   - How does this situation affect the character's mental state?
   - What kind of coping mechanism might the character use?

4. Finally, I will ensure the consistency and authenticity of the character image.

Please create the main character information in the following strict format:

<name>
[2-4 character name]
</name>

<description>
[30 words or less, a brief description of the character's identity and core traits]
</description>

<personality>
[3 personality traits, each with a brief example]
- [trait 1]: [example]
- [trait 2]: [example]
- [trait 3]: [example]
</personality>

<background>
[50 words or less, including key experiences and current situation]
</background>

<appearance>
[40 words or less, highlighting distinctive physical characteristics]
</appearance>

<skills>
[3-4 main skills, each with a brief description]
- [skill 1]
- [skill 2]
- [skill 3]
</skills>

<location>
[20 words or less, current location and reason]
</location>

<status>
[30 words or less, current emotions and goals]
</status>

Notes:
1. Keep each section complete and accurate.
2. Keep the language concise.
3. Every section must be wrapped in its matching XML tag.
4. Do not use any additional tags or formatting.`

const characterPromptZH = `1. 主角信息:
<character_info>
%s
</character_info>

【思考链路过程】
我将通过以下步骤分析和丰富主角信息：

1. 首先，我会仔细分析提供的角色基础信息，提取关键事实：
   - 角色的名字和基本身份是什么？
   - 有哪些明确提及的背景元素？
   - 已知的性格特点有哪些？
   - 角色的外貌描述中有哪些关键点？

2. 接下来，我将思考角色的深层次特征：
   - 根据背景推测可能的成长经历
   - 分析角色行为背后的动机和价值观
   - 考虑角色的长处和弱点如何形成
   - 推断角色可能掌握的技能和知识

3. 然后，我将考虑角色的当前处境：
   - 角色目前面临什么样的情况？
   - 这种处境对角色的心理状态有何影响？
   - 角色可能采取什么样的应对方式？

4. 最后，我将确保角色形象的一致性和立体感。

【正式回答】
请按照以下严格的格式创建主角信息：

<name>
[2-4字角色名]
</name>

<description>
[30字以内的身份和核心特征简述]
</description>

<personality>
[3个性格特征，每个配一个简短例子]
- [特征1]：[例子]
- [特征2]：[例子]
- [特征3]：[例子]
</personality>

<background>
[50字以内，包含关键经历和现状]
</background>

<appearance>
[40字以内，突出标志性外貌特征]
</appearance>

<skills>
[3-4项主要技能，每项一句话]
- [技能1]
- [技能2]
- [技能3]
</skills>

<location>
[20字以内，当前位置和原因]
</location>

<status>
[30字以内，当前情绪和目标]
</status>

注意事项：
1. 请确保信息的完整性和准确性。
2. 保持语言简洁，避免冗余。
3. 信息应当与角色背景相符。
4. 每个部分必须使用对应的XML标签包裹。
5. 避免使用任何额外的标签或格式。`

const detailedCharacterPromptEN = `Based on the provided information, enrich and refine the character:

<character_info>
%s
</character_info>

Create a full profile in the following strict format:

<name>
[Character name, fitting the character's cultural background and identity]
</name>

<description>
[100-200 words covering the character's core traits, social identity, major experiences and current goal]
</description>

<personality>
[At least 5 distinct personality traits, each with a concrete example, including flaws and behavior under pressure]
</personality>

<background>
[300-400 words describing upbringing, turning points, family, education and career, including at least one formative event]
</background>

<appearance>
[Around 200 words covering facial features, build, habitual expressions, distinguishing marks and dress]
</appearance>

<skills>
[8-10 concrete skills split into professional and everyday, each with proficiency and how it was acquired]
</skills>

<location>
[Current location with place name, surroundings, the character's relationship to it and purpose there]
</location>

<status>
[Around 200 words on the character's current emotional state, inner conflicts, hopes and fears]
</status>

Notes:
1. Keep each section complete and internally consistent.
2. Every section must be wrapped in its matching XML tag.
3. Do not use any additional tags or formatting.`

const detailedCharacterPromptZH = `根据提供的信息丰富完善主角的信息：

1. 主角信息:
<character_info>
%s
</character_info>

【正式回答】
请按照以下严格的格式创建主角信息：

<name>
[主角名称 - 确保名字符合角色的文化背景和身份]
</name>

<description>
[主角的整体描述，100-200字，包含角色的核心特征、社会身份、主要经历和当前目标。]
</description>

<personality>
[主角的性格，至少5个鲜明的性格特点，每个特点配以具体表现例子。包括性格优点和缺点，以及在压力下可能表现出的特殊行为模式。]
</personality>

<background>
[主角身份背景，300-400字，详细描述角色的成长历程、重要人生转折点、家庭关系、教育经历和职业发展。包含至少一个塑造角色世界观的关键事件。]
</background>

<appearance>
[主角外貌，200字左右，包含面部特征、体型、习惯性表情、特殊标志、穿着风格等。]
</appearance>

<skills>
[主角技能，列出8-10项具体技能，分为专业技能和日常技能两类。每项技能包含熟练程度和获得方式。]
</skills>

<location>
[主角当前所在位置，包含具体地点名称、环境描述、角色与此地的关系，以及角色在此地的活动目的。]
</location>

<status>
[主角当前心理状态，200字左右，深入分析角色面对当前处境的情绪反应、内心冲突、希望与恐惧。]
</status>

注意事项：
1. 请确保信息的完整性和准确性。
2. 保持语言简洁丰富，避免冗余。
3. 信息应当与角色背景相符。
4. 每个部分必须使用对应的XML标签包裹。
5. 避免使用任何额外的标签或格式。`

const openingScenePromptEN = `1. The overall framework of the story
<story_framework>
%s
</story_framework>

2. Character information
<character_info>
%s
</character_info>

Based on this world framework and character, create an opening scene that
establishes the character in the world, presents an initial situation or
challenge, and gives the player clear opportunities for their first actions.

Use the following strict format:

<narrative>
[The opening scene, 300-500 words, written in third person]
</narrative>

<next_prompts>
- [concise action suggestion, 15 words or less]
- [concise action suggestion, 15 words or less]
- [concise action suggestion, 15 words or less]
</next_prompts>

Notes:
1. Write strictly in third person.
2. Every section must be wrapped in its matching XML tag.
3. Keep the scene consistent with the story framework and character.
4. Do not use any additional tags or formatting.`

const openingScenePromptZH = `1. 故事的整体框架或结构
<story_framework>
%s
</story_framework>

2. 主角的信息
<character_info>
%s
</character_info>

请按照以下严格的格式创建开场场景：

<narrative>
[根据故事框架和主角信息，创建一个开场场景，300-500字]
</narrative>

<next_prompts>
- [简洁的行动提示，不超过15字]
- [简洁的行动提示，不超过15字]
- [简洁的行动提示，不超过15字]
</next_prompts>

注意事项：
1. 严格使用第三人称视角
2. 每个部分必须使用对应的XML标签包裹
3. 场景描述要与故事框架和角色设定保持一致
4. 行动机会应该自然地融入当前场景
5. 避免使用任何额外的标签或格式`

const actionPromptEN = `You get the following information:

Story Framework is the overall framework or structure of the story.
<story_framework>
%s
</story_framework>

Character Info is the information about the character.
<character_info>
%s
</character_info>

History Story is the compressed history of the story.
<history_story>
%s
</history_story>

Recent Story is the most recent part of the story.
<recent_story>
%s
</recent_story>

User Input is the current user input or instruction.
<user_input>
%s
</user_input>

Continue the story by PRIMARILY responding to the user_input:
1. Analyze the user's action intent from their input
2. Determine consequences based on the story framework, history and recent story
3. Describe immediate outcomes and environmental changes
4. Maintain narrative flow with previous story elements
5. Leave subtle hints for potential next actions

Respond in the following strict format:

<analysis>
[The action intent behind the user input, 50 words or less]
</analysis>

<narrative>
[The story continuation, 300-500 words, third person, directly reflecting the
consequences of the player's action and referencing at least one earlier
story detail]
</narrative>

<next_prompts>
- [concise action suggestion responding to the current situation]
- [concise action suggestion exploring a new possibility]
- [concise action suggestion for an emotional or social interaction]
</next_prompts>

Notes:
1. Write strictly in third person.
2. Every section must be wrapped in its matching XML tag.
3. Do not introduce elements that conflict with the established world.
4. Do not use any additional tags or formatting.`

const actionPromptZH = `你获得以下信息：

1. 故事的整体框架或结构
<story_framework>
%s
</story_framework>

2. 主角的信息
<character_info>
%s
</character_info>

3. 故事的历史
<history_story>
%s
</history_story>

4. 故事的最新部分
<recent_story>
%s
</recent_story>

5. 当前用户输入或指令
<user_input>
%s
</user_input>

请优先响应用户输入，延续故事：
1. 分析用户输入中的行动意图
2. 结合故事框架、历史故事和近期故事判断行动后果
3. 描述行动的直接结果和环境变化
4. 与之前的故事元素保持叙事连贯
5. 为后续行动埋下伏笔

【正式回答】
请按照以下严格的格式输出回复：

<analysis>
[在这里分析用户输入中的行动意图，不超过50字，包含行动类型、目标和可能的动机]
</analysis>

<narrative>
[主要故事内容：直接反映主角行为的具体结果和连锁影响，引用至少1-2个相关的历史故事细节，生动描述场景、NPC或环境的变化，为后续发展埋下伏笔。请用第三人称视角写作，300-500字]
</narrative>

<next_prompts>
- [简洁的行动提示，体现直接应对当前情境的选择，不超过15字]
- [简洁的行动提示，体现探索新可能性的选择，不超过15字]
- [简洁的行动提示，体现情感或社交互动的选择，不超过15字]
</next_prompts>

注意事项：
1. 严格使用第三人称视角，避免使用"你"或直接对读者说话
2. 每个部分必须使用对应的XML标签包裹
3. 确保叙述与故事框架保持一致，不要引入与世界设定冲突的元素
4. 行动提示应该多样化，覆盖不同类型的可能行动
5. 避免使用任何额外的标签或格式`

const systemPromptEN = `You are an advanced AI game master for an immersive text adventure game. Your role is to create a dynamic, responsive narrative experience based on the player's actions.

Follow these guidelines:

0. PRIORITIZE PLAYER ACTION - Always start by processing the user_input from last turn

1. Maintain consistency with the established world framework at all times:
   - Geographic locations and their relationships
   - Characters and their personalities
   - Rules of the world (including any magical/technological systems)
   - Historical events that have been established

2. Respond directly to the player's actions with appropriate consequences:
   - Describe what happens as a result of their action
   - Include sensory details (what they see, hear, feel, etc.)
   - Introduce appropriate challenges and opportunities
   - Allow for player agency and meaningful choices

3. Advance the narrative naturally by:
   - Introducing new elements that fit the established world
   - Creating interesting situations and conflicts
   - Providing opportunities for exploration and discovery
   - Maintaining appropriate pacing

4. Balance detail and brevity:
   - Provide rich descriptions of new locations and important elements
   - Keep routine interactions concise
   - Focus on what would be most interesting to the player`

const systemPromptZH = `你是一个高级AI文字游戏系统，负责创建基于玩家行动的沉浸式文字冒险游戏体验，故事内容以第三人称视角写作。

遵循以下指导原则：

0. 优先处理玩家行动 - 始终从处理上一轮的 <user_input> 开始

1. 始终保持与既定世界框架的一致性：
   - 地理位置及其关系
   - 角色及其性格
   - 世界规则（包括任何魔法/科技系统）
   - 已经确立的历史事件

2. 结合历史故事和近期故事，为玩家提供连续的叙事体验：
   - 引用相关的历史故事细节作为情节连接
   - 结合世界框架规则展现事件发展
   - 体现场景、NPC或环境的动态变化
   - 为后续发展埋下伏笔

3. 对玩家的行动做出直接回应，并给出适当的后果：
   - 描述他们行动的结果
   - 包含感官细节（他们看到、听到、感觉到的等）
   - 引入适当的挑战和机会
   - 允许玩家代理权和有意义的选择

4. 平衡细节和简洁：
   - 对新位置和重要元素提供丰富的描述
   - 保持常规互动简洁
   - 关注对玩家最有趣的内容`

const compressorPromptEN = `You are a story compressor. Your task is to compress one turn of the story while following these rules:

1. Core Elements to Preserve:
   - Main plot points and story arc
   - Essential character actions and decisions
   - Critical scene transitions
   - Key relationships and conflicts
   - Cause-and-effect connections

2. Elements to Remove:
   - Redundant descriptions
   - Excessive adjectives and adverbs
   - Non-essential dialogues
   - Decorative phrases and metaphors
   - Background details that don't impact the plot

<user_input>
%s
</user_input>

<story>
%s
</story>

Return the compressed story in the following strict format:

<event>
[key event, short statement] --> [key event, short statement] --> [final outcome, short statement]
</event>

Format requirements:
- Write in third person
- Keep each event statement short and direct
- Connect events with "-->"
- The compressed chain should contain 4-8 key events
- Do not use numbering`

const compressorPromptZH = `你是一个故事压缩器。你的任务是根据用户的输入压缩故事，同时遵循以下具体规则：

1. 用户的阶段性输入
<user_input>
%s
</user_input>

2. 故事的阶段性发展
<story>
%s
</story>

【正式回答】
请按照以下严格的格式返回压缩后的故事：

<event>
[核心事件1，简洁陈述] ——> [核心事件2，简洁陈述] ——> [核心事件3，简洁陈述] ——> [最终结果，简洁陈述]
</event>

压缩指南：
1. 保留必要元素：
   - 主要情节点和关键转折
   - 主角的核心行动和决策
   - 重要的场景转换
   - 关键的人物互动
   - 直接的因果关系

2. 删除以下元素：
   - 所有修饰性描述和形容词
   - 非关键对话和内心独白
   - 重复信息和冗余内容
   - 不影响情节的环境细节
   - 次要角色的非必要行动

3. 格式要求：
   - 使用第三人称视角
   - 每个事件陈述控制在5-10个字
   - 事件之间使用 "——>" 符号连接
   - 不使用任何数字编号或序号
   - 整个压缩故事应包含4-8个关键事件点`

const worldSystemPromptEN = `You are a professional world framework generator. You create a rich, logically coherent and clearly cross-referenced game world knowledge base, similar to a wiki.

1. Content responsibilities:
   - Expand and enrich the world based on the user's initial story background
   - Create a logical historical timeline and cultural systems
   - Design NPCs with distinct personalities and clear motivations
   - Build a plausible geography and political landscape

2. Association principles:
   - Ensure clear logical links between all generated content
   - Establish a consistent system of location references
   - Build a complete network of character relationships
   - Create a coherent chain of historical events

3. Quality standards:
   - Keep the setting internally consistent
   - Create reasonable conflicts and tensions
   - Balance the influence of different factions and cultures
   - Leave room for exploration and mystery

Use consistent terminology and naming conventions throughout so the output can be cross-referenced reliably.`

const worldSystemPromptZH = `你是一个专业的世界框架生成器，需要创建一个内容丰富、逻辑连贯且关系明确的游戏世界知识库，形式类似于维基百科。作为一个世界构建专家，你需要：

1. 内容创作职责：
   - 基于用户提供的初始故事背景，扩展并丰富世界观
   - 创造符合逻辑的历史脉络和文化体系
   - 设计具有独特性格和明确动机的NPC角色
   - 构建合理的地理环境和政治格局

2. 知识关联原则：
   - 确保所有生成内容之间存在明确的逻辑关联
   - 建立清晰的地理位置引用体系
   - 构建完整的人物关系网络
   - 创建连贯的历史事件链条

3. 创作原则：
   - 保持设定的一致性和连贯性
   - 创造合理的冲突和矛盾
   - 平衡不同势力和文化的影响
   - 留下适当的探索空间和悬念

4. 质量标准：
   - 确保内容的完整性和深度
   - 维持叙述的客观性和中立性
   - 避免逻辑漏洞和设定冲突
   - 提供足够的细节支撑

请在整个输出中使用统一的命名规范和术语体系，确保信息的可追溯性和关联性。`

const worldPromptEN = `Based on the following information, create a complete world framework:

Story framework:
<story_framework>
%s
</story_framework>

Main character:
<character_info>
%s
</character_info>

Your answer must strictly follow the XML tag format below. All content must be inside the matching tags, tags must be correctly paired, and nothing may appear outside them.

<world_structure>
(At least 3 world-level entities, at least 5 kingdoms/regions and at least 7 towns/villages/outposts. For each: name, setting, main features, location and how it connects to the levels above and below.)
</world_structure>

<important_npc>
(At least 12 NPCs. For each: name, identity, appearance, location tied to a specific town or kingdom, background story, personality traits, goals and motivation, relationships with 2-3 other NPCs, role in a historical event, and resources they hold.)
</important_npc>

<history>
(At least 6 historical events in chronological order. For each: name, time, location tied to a specific region, participants tied to specific NPCs, cause, course, outcome, long-term impact, differing interpretations, and open questions left behind.)
</history>

<world_architecture>
(A synthesis of at least 300 words: the world's core theme and conflicts, the balance between the major powers, its magic/technology/religious systems, the main character's place and possible fate in it, the main threats it faces, and potential story directions.)
</world_architecture>

Notes:
- Build everything outward from the main character's background
- Keep clear cross-references between locations, characters and events
- Stay consistent with the provided information
- Leave deliberate gaps and mysteries for future story development`

const worldPromptZH = `基于以下提供的基础信息，请创建完整的世界框架：

故事基础框架：
<story_framework>
%s
</story_framework>

主要角色信息：
<character_info>
%s
</character_info>

【重要格式说明】
你的回答必须严格按照以下XML标签格式输出，所有内容都必须包含在对应的标签内：
1. 世界结构部分必须被<world_structure>标签包裹
2. 重要NPC部分必须被<important_npc>标签包裹
3. 历史事件部分必须被<history>标签包裹
4. 世界架构部分必须被<world_architecture>标签包裹
5. 不允许在标签外输出任何正文内容
6. 标签必须正确配对(开始标签和结束标签)

【输出格式要求】

<world_structure>
(至少3个世界级实体，每个至少100字描述，包含名称、基本设定、主要特征、地理位置、历史背景)

(至少5个王国/国家/地区，每个至少100字描述，包含统治者、社会结构、与世界层级的关联、特色文化)

(至少7个城镇/村庄/据点，每个至少80字描述，包含位置、特色、重要建筑、与王国的关系)
</world_structure>

<important_npc>
(至少12个NPC，每个至少包含以下要素)
1. [姓名] - [身份/职业]
- 外貌: [详细描述]
- 所在位置: [关联到具体城镇或王国]
- 背景故事: [个人历史，至少80字]
- 性格特点: [3-5个性格特点及行为模式]
- 目标与动机: [当前追求的目标及深层动机]
- 人际关系: [与至少2-3个其他NPC的关系]
- 历史角色: [在某个历史事件中的参与]
- 掌握资源: [重要信息、物品或能力]
</important_npc>

<history>
(至少6个历史事件，每个至少120字，按时间顺序排列)
1. [事件名称] - [发生时间]
- 地点: [关联到具体地区]
- 参与者: [关联到具体NPC]
- 起因: [事件的导火索和背景]
- 经过: [事件的主要过程]
- 结果: [事件的直接后果]
- 影响: [对世界格局的长远影响]
</history>

<world_architecture>
(至少300字的世界架构综合描述)
- 世界的核心主题和冲突
- 主要势力之间的平衡与对抗
- 世界的魔法/科技/宗教系统
- 主角在这个世界中的定位和可能的命运轨迹
- 世界面临的主要威胁或挑战
- 潜在的故事发展方向
</world_architecture>

注意事项：
- 每个部分必须使用对应的XML标签包裹
- 所有内容必须以主角背景为核心出发点，逐步扩展
- 确保各部分之间建立明确的关联，包括地点、人物、事件的交叉引用
- 所有生成内容必须与提供的基础信息保持一致性
- 留下一些有意的空白和谜团，为未来故事发展预留空间`
